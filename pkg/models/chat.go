package models

// SendMessageRequest contains a user message addressed to a channel's agent.
type SendMessageRequest struct {
	ChannelID string `json:"channel_id"`
	UserID    string `json:"user_id"`

	// AgentID optionally overrides the channel's default agent; it must be
	// on the channel's allowed list when one is configured.
	AgentID string `json:"agent_id,omitempty"`

	Content string `json:"content"`
}

// SendMessageResponse is the non-streaming chat reply.
type SendMessageResponse struct {
	ChannelID     string   `json:"channel_id"`
	AgentID       string   `json:"agent_id"`
	FinalResponse string   `json:"final_response"`
	JobIDs        []string `json:"job_ids,omitempty"`
	Rounds        int      `json:"rounds"`
}
