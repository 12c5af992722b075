package notifier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mca/pkg/notifier"
	"mca/pkg/serrors"
)

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		msg     notifier.Message
		wantErr bool
	}{
		{"valid", notifier.Message{To: []string{"a@b.test"}, Subject: "s"}, false},
		{"no recipient", notifier.Message{Subject: "s"}, true},
		{"bad recipient", notifier.Message{To: []string{"a@b.test", "b"}, Subject: "s"}, true},
		{"no subject", notifier.Message{To: []string{"a@b.test"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, serrors.ErrBadRequest)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLogNotifier(t *testing.T) {
	n := notifier.NewLog()
	require.NoError(t, n.Send(context.Background(), notifier.Message{To: []string{"a@b.test"}, Subject: "s"}))
	require.Error(t, n.Send(context.Background(), notifier.Message{}))
}
