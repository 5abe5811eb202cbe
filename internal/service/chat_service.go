package service

import (
	"context"
	"log"
	"strings"
)

const (
	chatFallbackUpstream = "Oops! Something went wrong with the chatbot."
	chatFallbackUnknown  = "I'm sorry, but I don't have the information you're looking for. Can I help you with anything else?"
)

// cannedReply pairs a lowercase keyword with its fixed response.
// Keywords are checked in order; the first match wins and the
// completion API is not consulted at all.
type cannedReply struct {
	keyword string
	reply   string
}

var cannedReplies = []cannedReply{
	{"operation hours", "Our operation hours are from 9 AM to 6 PM."},
	{"status of my order", "Please provide your order ID, and we will check the status for you."},
	{"popular dish", "Our most popular dish is the Spicy Chicken Pasta."},
	{"delivery options", "We offer multiple delivery options, including standard delivery and express delivery."},
	{"payment methods", "We accept various payment methods such as credit cards, debit cards, and digital wallets."},
	{"menu", "You can find our menu on our website or in the app. It includes a wide range of delicious dishes."},
}

// ChatService answers free-text queries: known keywords get canned
// replies, everything else is delegated to the completion API, and an
// upstream failure degrades to a fixed fallback instead of failing
// the request.
type ChatService struct {
	completer CompletionClient
}

func NewChatService(completer CompletionClient) *ChatService {
	return &ChatService{completer: completer}
}

func (s *ChatService) Reply(ctx context.Context, message string) string {
	lower := strings.ToLower(message)
	for _, canned := range cannedReplies {
		if strings.Contains(lower, canned.keyword) {
			return canned.reply
		}
	}

	if s.completer == nil {
		return chatFallbackUnknown
	}

	prompt := "Food Delivery Chatbot:\nUser: " + message + "\nChatbot:"
	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		log.Printf("[chat] completion failed: %v", err)
		return chatFallbackUpstream
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return chatFallbackUnknown
	}
	return text
}

var _ ChatServiceInterface = (*ChatService)(nil)
