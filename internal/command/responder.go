package command

import (
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
)

// Responder provides an abstraction for responding to Discord interactions.
// This interface enables testing handlers without a live Discord connection.
type Responder interface {
	// Respond sends a response to an interaction.
	Respond(response *discordgo.InteractionResponse) error

	// Responded reports whether a response was already sent successfully.
	Responded() bool
}

// DiscordResponder implements Responder using a live Discord session.
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
	responded   atomic.Bool
}

// NewDiscordResponder creates a new DiscordResponder.
func NewDiscordResponder(s *discordgo.Session, i *discordgo.Interaction) Responder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Respond sends a response to the interaction via Discord API.
func (r *DiscordResponder) Respond(response *discordgo.InteractionResponse) error {
	if err := r.session.InteractionRespond(r.interaction, response); err != nil {
		return err
	}
	r.responded.Store(true)
	return nil
}

// Responded reports whether Respond succeeded at least once.
func (r *DiscordResponder) Responded() bool {
	return r.responded.Load()
}

// MockResponder is a test double for Responder.
type MockResponder struct {
	mu           sync.Mutex
	Responses    []*discordgo.InteractionResponse
	LastResponse *discordgo.InteractionResponse
	Err          error
}

// Respond records the response for testing.
func (m *MockResponder) Respond(response *discordgo.InteractionResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastResponse = response
	if m.Err != nil {
		return m.Err
	}
	m.Responses = append(m.Responses, response)
	return nil
}

// Responded reports whether a response was recorded without error.
func (m *MockResponder) Responded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Responses) > 0
}

// LastContent returns the content of the last recorded response, if any.
func (m *MockResponder) LastContent() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LastResponse == nil || m.LastResponse.Data == nil {
		return ""
	}
	return m.LastResponse.Data.Content
}
