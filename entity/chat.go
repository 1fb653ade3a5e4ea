package entity

// ChatRequest is one conversation turn sent by the storefront. SessionId is
// optional on the first turn; the reply carries the id the client must send
// back to keep the conversation context.
type ChatRequest struct {
	SessionId string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatReply is the composed answer for one turn.
type ChatReply struct {
	SessionId string `json:"session_id"`
	Response  string `json:"response"`
}
