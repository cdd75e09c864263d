package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"codemaster/internal/errors"
	"codemaster/internal/logging"
	"codemaster/internal/metrics"
	"codemaster/internal/types"

	"github.com/google/uuid"
)

// Conversant answers one tutor turn.
type Conversant interface {
	Converse(ctx context.Context, message string, prior []types.ChatMessage, loc types.Locale) (string, error)
}

// Conversation is the append-only tutor log. Messages are never removed or
// rewritten; a failed send leaves the user's message in place with no reply.
type Conversation struct {
	mu  sync.RWMutex
	log []types.ChatMessage

	tutor Conversant
	flag  *busyFlag

	// now is swapped in tests.
	now func() time.Time
}

// NewConversation creates an empty conversation.
func NewConversation(tutor Conversant, m *metrics.Metrics) *Conversation {
	return &Conversation{
		tutor: tutor,
		flag:  newBusyFlag(FlowChat, m),
		now:   time.Now,
	}
}

// Send appends text as a user message and asks the tutor for a reply. Blank
// text and sends made while another is outstanding are rejected before
// anything is appended.
func (c *Conversation) Send(ctx context.Context, text string, loc types.Locale) (*types.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.Wrap(errors.ErrEmptyInput, "chat")
	}
	if c.tutor == nil {
		return nil, errors.New("chat: no tutor configured")
	}
	release, err := c.flag.enter()
	if err != nil {
		return nil, err
	}
	defer release()

	c.mu.Lock()
	prior := append([]types.ChatMessage(nil), c.log...)
	c.log = append(c.log, c.newMessage(types.RoleUser, text))
	c.mu.Unlock()

	logging.SessionDebug("chat send: prior=%d locale=%s", len(prior), loc)
	reply, err := c.tutor.Converse(ctx, text, prior, loc)
	if err != nil {
		logging.SessionWarn("chat failed, no reply appended: %v", err)
		return nil, err
	}

	c.mu.Lock()
	msg := c.newMessage(types.RoleModel, reply)
	c.log = append(c.log, msg)
	c.mu.Unlock()
	return &msg, nil
}

// newMessage must be called with mu held.
func (c *Conversation) newMessage(role types.Role, text string) types.ChatMessage {
	return types.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: c.now(),
	}
}

// Messages returns a copy of the log.
func (c *Conversation) Messages() []types.ChatMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]types.ChatMessage{}, c.log...)
}

// Len returns the number of logged messages.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.log)
}

// Reset empties the log. Only used on a full reload; the log is otherwise
// append-only.
func (c *Conversation) Reset() {
	c.mu.Lock()
	c.log = nil
	c.mu.Unlock()
}

// Busy reports whether a send is in flight.
func (c *Conversation) Busy() bool {
	return c.flag.busy()
}
