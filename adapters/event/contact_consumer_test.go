package event

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

type scriptedReader struct {
	queue     []kafka.Message
	committed []kafka.Message
}

func (r *scriptedReader) FetchMessage(context.Context) (kafka.Message, error) {
	if len(r.queue) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.queue[0]
	r.queue = r.queue[1:]
	return m, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *scriptedReader) Close() error { return nil }

func encodeEvent(t *testing.T, p ContactEventPayload) kafka.Message {
	t.Helper()
	v, err := json.Marshal(p)
	require.NoError(t, err)
	return kafka.Message{Key: []byte(p.MessageID.String()), Value: v}
}

func TestContactEventConsumer_Run(t *testing.T) {
	ok := ContactEventPayload{EventType: ContactEventTypeReceived, MessageID: uuid.New(), Email: "jane@x.com"}
	failing := ContactEventPayload{EventType: ContactEventTypeReceived, MessageID: uuid.New()}

	reader := &scriptedReader{queue: []kafka.Message{
		encodeEvent(t, ok),
		{Key: []byte("junk"), Value: []byte("{not json")},
		encodeEvent(t, failing),
	}}
	consumer := &ContactEventConsumer{reader: reader, logger: logger.NewNop()}

	var handled []uuid.UUID
	err := consumer.Run(context.Background(), func(_ context.Context, p ContactEventPayload) error {
		handled = append(handled, p.MessageID)
		if p.MessageID == failing.MessageID {
			return errors.New("handler failed")
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{ok.MessageID, failing.MessageID}, handled)
	// the good event and the skipped junk are committed, the failed one is not
	require.Len(t, reader.committed, 2)
	assert.Equal(t, ok.MessageID.String(), string(reader.committed[0].Key))
	assert.Equal(t, "junk", string(reader.committed[1].Key))
}
