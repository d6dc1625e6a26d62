package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/share-favorites/models"
)

// Command is the one-letter tag that starts every message.
type Command byte

const (
	// CommandPushFavorites carries the initiator's full favorites snapshot.
	CommandPushFavorites Command = 'F'
	// CommandPushIdentity carries a joiner's nickname and colors.
	CommandPushIdentity Command = 'f'
)

const delimiter = ':'

func (c Command) String() string {
	return string(rune(c))
}

// Message is one decoded protocol message. The set of implementations is
// closed: [PushFavorites], [PushIdentity] and [Unknown].
type Message interface {
	Command() Command
	isMessage()
}

// PushFavorites is the "F" message.
type PushFavorites struct {
	Snapshot models.FavoritesSnapshot
}

// PushIdentity is the "f" message.
type PushIdentity struct {
	Participant models.ParticipantInfo
}

// Unknown is a message whose tag is not a known command.
type Unknown struct {
	Tag     Command
	Payload string
}

func (PushFavorites) Command() Command { return CommandPushFavorites }
func (PushIdentity) Command() Command  { return CommandPushIdentity }
func (u Unknown) Command() Command     { return u.Tag }

func (PushFavorites) isMessage() {}
func (PushIdentity) isMessage()  {}
func (Unknown) isMessage()       {}

// Encode renders msg in wire form.
func Encode(msg Message) (string, error) {
	var (
		payload []byte
		err     error
	)

	switch m := msg.(type) {
	case PushFavorites:
		payload, err = json.Marshal(m.Snapshot)
	case PushIdentity:
		payload, err = json.Marshal(m.Participant)
	case Unknown:
		payload = []byte(m.Payload)
	default:
		return "", fmt.Errorf("encode: unsupported message type %T", msg)
	}
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", msg.Command(), err)
	}

	return msg.Command().String() + string(delimiter) + string(payload), nil
}

// Decode parses one wire message.
func Decode(text string) (Message, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if len(text) < 2 || text[1] != delimiter {
		return nil, ErrMissingDelimiter
	}

	tag := Command(text[0])
	payload := text[2:]

	switch tag {
	case CommandPushFavorites:
		var snapshot models.FavoritesSnapshot
		if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedPayload, tag, err)
		}
		return PushFavorites{Snapshot: snapshot}, nil
	case CommandPushIdentity:
		var participant models.ParticipantInfo
		if err := json.Unmarshal([]byte(payload), &participant); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedPayload, tag, err)
		}
		return PushIdentity{Participant: participant}, nil
	default:
		return Unknown{Tag: tag, Payload: payload}, nil
	}
}
