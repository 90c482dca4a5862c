package response

// The write results keep the field names of the MongoDB Node driver results
// the web client already reads (insertedId, deletedCount, ...).

type InsertResponse struct {
	Message      string  `json:"message,omitempty"`
	Acknowledged bool    `json:"acknowledged,omitempty"`
	InsertedID   *string `json:"insertedId"`
}

type UpdateResponse struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

type DeleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func Inserted(id string) *InsertResponse {
	return &InsertResponse{Acknowledged: true, InsertedID: &id}
}

func Deleted(n int64) *DeleteResponse {
	return &DeleteResponse{Acknowledged: true, DeletedCount: n}
}
