package api

// HealthMessage is the fixed status message reported by the health payload.
const HealthMessage = "Neurosell Health Server is Running"

// Envelope is the response body shared by every route.
// data is reserved for future extension and always serializes as an object.
type Envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// NewHealthEnvelope constructs the health payload. A fresh value is returned on every call.
func NewHealthEnvelope() Envelope {
	return Envelope{
		Success: true,
		Message: HealthMessage,
		Data:    map[string]any{},
	}
}

// NewErrorEnvelope constructs a failure payload with an empty data object.
func NewErrorEnvelope(msg string) Envelope {
	return Envelope{
		Success: false,
		Message: msg,
		Data:    map[string]any{},
	}
}
