package transfer

type CollectionFields struct {
	CollectionName string `json:"collection_name"`
}

// CollectionCreation accepts the name either at the top level or nested
// under "collection".
type CollectionCreation struct {
	CollectionName string            `json:"collection_name"`
	Collection     *CollectionFields `json:"collection"`
	PostIDs        []int64           `json:"post_ids"`
}

// Name returns the collection name from whichever form the caller used.
func (c *CollectionCreation) Name() string {
	if c.CollectionName == "" && c.Collection != nil {
		return c.Collection.CollectionName
	}
	return c.CollectionName
}
