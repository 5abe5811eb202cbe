package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"foodhub/internal/mocks"
	"foodhub/internal/service"
)

func TestChatService_KeywordRepliesIgnoreCompletionAPI(t *testing.T) {
	ctx := context.Background()

	// No expectations: a keyword hit must never reach the API.
	completer := mocks.NewCompletionClient(t)
	svc := service.NewChatService(completer)

	tests := []struct {
		message  string
		expected string
	}{
		{"What are your operation hours?", "Our operation hours are from 9 AM to 6 PM."},
		{"what is the STATUS OF MY ORDER", "Please provide your order ID, and we will check the status for you."},
		{"most popular dish?", "Our most popular dish is the Spicy Chicken Pasta."},
		{"tell me about delivery options", "We offer multiple delivery options, including standard delivery and express delivery."},
		{"which payment methods do you take", "We accept various payment methods such as credit cards, debit cards, and digital wallets."},
		{"where can I see the menu", "You can find our menu on our website or in the app. It includes a wide range of delicious dishes."},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.expected, svc.Reply(ctx, testCase.message))
	}
}

func TestChatService_DelegatesToCompletion(t *testing.T) {
	ctx := context.Background()

	completer := mocks.NewCompletionClient(t)
	completer.On("Complete", ctx, mock.MatchedBy(func(prompt string) bool {
		return prompt == "Food Delivery Chatbot:\nUser: do you cater weddings?\nChatbot:"
	})).Return("  We do! Call us for details.  ", nil).Once()

	svc := service.NewChatService(completer)
	reply := svc.Reply(ctx, "do you cater weddings?")
	assert.Equal(t, "We do! Call us for details.", reply)
}

func TestChatService_UpstreamFailureDegrades(t *testing.T) {
	ctx := context.Background()

	completer := mocks.NewCompletionClient(t)
	completer.On("Complete", ctx, mock.Anything).Return("", errors.New("connection refused")).Once()

	svc := service.NewChatService(completer)
	reply := svc.Reply(ctx, "do you cater weddings?")
	assert.Equal(t, "Oops! Something went wrong with the chatbot.", reply)
}

func TestChatService_EmptyCompletionFallsBack(t *testing.T) {
	ctx := context.Background()

	completer := mocks.NewCompletionClient(t)
	completer.On("Complete", ctx, mock.Anything).Return("   ", nil).Once()

	svc := service.NewChatService(completer)
	reply := svc.Reply(ctx, "do you cater weddings?")
	assert.Equal(t, "I'm sorry, but I don't have the information you're looking for. Can I help you with anything else?", reply)
}

func TestChatService_NoCompleterConfigured(t *testing.T) {
	svc := service.NewChatService(nil)
	reply := svc.Reply(context.Background(), "do you cater weddings?")
	assert.Equal(t, "I'm sorry, but I don't have the information you're looking for. Can I help you with anything else?", reply)
}
