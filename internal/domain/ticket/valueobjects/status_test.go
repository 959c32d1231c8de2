package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "start", input: "Start", want: StatusStart},
		{name: "pending", input: "Pending", want: StatusPending},
		{name: "in progress", input: "In Progress", want: StatusInProgress},
		{name: "resolved", input: "Resolved", want: StatusResolved},
		{name: "urgent", input: "Urgent", want: StatusUrgent},
		{name: "completed", input: "Completed", want: StatusCompleted},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown value", input: "Closed", wantErr: true},
		{name: "wrong case", input: "pending", wantErr: true},
		{name: "whitespace", input: " Pending ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultStatus(t *testing.T) {
	assert.Equal(t, StatusStart, DefaultStatus)
	assert.True(t, DefaultStatus.IsValid())
}

func TestAllStatuses(t *testing.T) {
	statuses := AllStatuses()
	assert.Len(t, statuses, 6)
	for _, s := range statuses {
		assert.True(t, s.IsValid(), "status %q should be valid", s)
	}
}

func TestNewRequestType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RequestType
		wantErr bool
	}{
		{name: "plain", input: "Software Installation", want: RequestType("Software Installation")},
		{name: "trimmed", input: "  License Activation  ", want: RequestType("License Activation")},
		{name: "empty", input: "", wantErr: true},
		{name: "only whitespace", input: "   ", wantErr: true},
		{name: "too long", input: string(make([]byte, 51)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRequestType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
