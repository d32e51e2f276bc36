package pubsub

import (
	"encoding/json"

	"registrar/internal/domain/constants"
	"registrar/internal/domain/service"

	"github.com/pkg/errors"
)

// PushMessage is the envelope Google Pub/Sub posts to push endpoints.
// The local publisher produces the same shape so the worker has one input format.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// encodeEvent serializes the event and builds the attributes used for routing and tracing.
func encodeEvent(event *service.ConfirmationEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttributeEventType:      constants.EventTypeConfirmationRequested,
		constants.AttributeRegistrationID: event.RegistrationID,
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return data, attributes, nil
}

// DecodeEvent parses a published confirmation event.
func DecodeEvent(data []byte) (*service.ConfirmationEvent, error) {
	var event service.ConfirmationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "decode confirmation event")
	}

	return &event, nil
}
