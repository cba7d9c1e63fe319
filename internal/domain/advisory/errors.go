package advisory

import "errors"

var (
	ErrConversationEnded = errors.New("conversation already ended")
	ErrEmptyMessage      = errors.New("message must not be empty")
	ErrUnknownProfile    = errors.New("unknown investor profile")
)
