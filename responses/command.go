package responses

// CommandResponse is the acknowledgement returned by cluster commands
// such as index creation and deletion.
type CommandResponse struct {
	Acknowledged bool `json:"acknowledged"`
}
