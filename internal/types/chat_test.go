package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request ChatRequest
		wantErr bool
	}{
		{"valid", ChatRequest{Message: "tell me about robotics"}, false},
		{"valid with history", ChatRequest{Message: "hi", ConversationHistory: []Turn{{Role: "user", Content: "earlier"}}}, false},
		{"missing message", ChatRequest{}, true},
		{"empty message", ChatRequest{Message: ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTurn_Text(t *testing.T) {
	assert.Equal(t, "modern", Turn{Content: "modern", Message: "legacy"}.Text())
	assert.Equal(t, "legacy", Turn{Message: "legacy"}.Text())
	assert.Equal(t, "", Turn{}.Text())
}

func TestChatResponse_EmptyContextsEncodesAsArray(t *testing.T) {
	body, err := json.Marshal(ChatResponse{Message: "hi", Contexts: []string{}})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"contexts":[]`)
}
