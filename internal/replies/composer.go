package replies

import (
	"errors"
	"fmt"

	"github.com/ruangdiskusi/webclient/internal/api"
	"github.com/ruangdiskusi/webclient/internal/domain"
	"github.com/ruangdiskusi/webclient/internal/richtext"
)

// ComposeState is the reply composition state machine:
// idle -> composing-root | composing-reply-to(node) -> idle.
type ComposeState int

const (
	ComposeIdle ComposeState = iota
	ComposeRoot
	ComposeReplyTo
)

var (
	ErrEmptyContent = errors.New("reply content is empty")
)

// TooLongError rejects submission locally when the markup-stripped text
// exceeds the server bound, avoiding a round trip that will fail.
type TooLongError struct {
	Length int
	Max    int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("reply is %d characters, maximum is %d", e.Length, e.Max)
}

// Composer tracks what the user is composing. In ComposeReplyTo the payload
// carries the target's id as parent_id; in ComposeRoot it omits it.
type Composer struct {
	state  ComposeState
	target *domain.Post
	maxLen int
}

func NewComposer(maxLen int) *Composer {
	return &Composer{maxLen: maxLen}
}

func (c *Composer) State() ComposeState { return c.state }

// Target returns the post being replied to, or nil outside ComposeReplyTo.
func (c *Composer) Target() *domain.Post { return c.target }

// BeginRoot starts composing a top-level reply.
func (c *Composer) BeginRoot() {
	c.state = ComposeRoot
	c.target = nil
}

// BeginReply starts composing a nested reply to the given post. A nil target
// degrades to root composition.
func (c *Composer) BeginReply(target *domain.Post) {
	if target == nil {
		c.BeginRoot()
		return
	}
	c.state = ComposeReplyTo
	c.target = target
}

// Cancel returns to idle without submitting.
func (c *Composer) Cancel() {
	c.state = ComposeIdle
	c.target = nil
}

// Submitted transitions back to idle after a successful submission.
func (c *Composer) Submitted() {
	c.state = ComposeIdle
	c.target = nil
}

// Payload validates the content and builds the request for the current
// state. Validation runs on the markup-stripped text.
func (c *Composer) Payload(content string, attachmentIds []int64) (api.CreatePostRequest, error) {
	var request api.CreatePostRequest

	stripped := richtext.Strip(content)
	if stripped == "" {
		return request, ErrEmptyContent
	}
	if length := len([]rune(stripped)); c.maxLen > 0 && length > c.maxLen {
		return request, &TooLongError{Length: length, Max: c.maxLen}
	}

	request.Content = content
	request.AttachmentIds = attachmentIds
	if c.state == ComposeReplyTo && c.target != nil {
		parentId := c.target.Id
		request.ParentId = &parentId
	}
	return request, nil
}
