package session

type SaveResponse struct {
	Saved bool `json:"saved"`
}

type LoadResponse struct {
	Restored bool `json:"restored"`
}

type ResetResponse struct {
	Reset bool `json:"reset"`
}
