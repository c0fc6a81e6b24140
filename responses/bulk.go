package responses

import (
	"encoding/json"
	"fmt"
)

// BulkResponse is the outcome of a bulk submission. The service reports
// 200 even when individual actions failed; Errors flags that at least
// one item carries an error.
type BulkResponse struct {
	Took   int64      `json:"took"`
	Errors bool       `json:"errors"`
	Items  []BulkItem `json:"items"`
}

// Failed returns the items that did not succeed.
func (r *BulkResponse) Failed() []BulkItem {
	var failed []BulkItem
	for _, item := range r.Items {
		if item.Err != nil {
			failed = append(failed, item)
		}
	}
	return failed
}

// BulkAction identifies the action an item belongs to.
type BulkAction string

const (
	BulkActionIndex  BulkAction = "index"
	BulkActionCreate BulkAction = "create"
	BulkActionUpdate BulkAction = "update"
	BulkActionDelete BulkAction = "delete"
)

// BulkItem is the per-action outcome inside a bulk response. On the wire
// each item is an object with a single key naming the action.
type BulkItem struct {
	Action  BulkAction
	Index   string
	Type    string
	ID      string
	Version *int64
	Status  int
	Result  string
	// Err is the classified failure for this item, or nil on success.
	Err *APIError
}

// bulkItemBody is the wire shape under the action key.
type bulkItemBody struct {
	Index   string           `json:"_index"`
	Type    string           `json:"_type"`
	ID      string           `json:"_id"`
	Version *int64           `json:"_version"`
	Status  int              `json:"status"`
	Result  string           `json:"result"`
	Error   *json.RawMessage `json:"error"`
}

// UnmarshalJSON decodes the single-key action wrapper.
func (i *BulkItem) UnmarshalJSON(data []byte) error {
	var wrapper map[BulkAction]bulkItemBody
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	if len(wrapper) != 1 {
		return fmt.Errorf("responses: bulk item must have exactly one action key, got %d", len(wrapper))
	}
	for action, body := range wrapper {
		i.Action = action
		i.Index = body.Index
		i.Type = body.Type
		i.ID = body.ID
		i.Version = body.Version
		i.Status = body.Status
		i.Result = body.Result
		if body.Error != nil {
			i.Err = classifyError(*body.Error)
		}
	}
	return nil
}
