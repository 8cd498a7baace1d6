package chat

import "errors"

var (
	ErrValidation     = errors.New("invalid chat request")
	ErrNotFound       = errors.New("conversation not found")
	ErrNotParticipant = errors.New("not a participant of this conversation")
	ErrSelfMessage    = errors.New("cannot start a conversation with yourself")
)
