package repositories

import "go.mongodb.org/mongo-driver/bson"

// identityFields are never rewritten by a replace or upsert.
var identityFields = [...]string{"id", "created_at"}

// SetFields flattens a document into the field map a replace writes,
// dropping the identity fields.
func SetFields(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for _, f := range identityFields {
		delete(m, f)
	}
	return m, nil
}

// Overlay applies a replace field map on top of an existing document and
// decodes the result back into the document type. The existing document's
// identity fields survive because SetFields never emits them.
func Overlay[T any](cur T, fields bson.M) (T, error) {
	var out T
	raw, err := bson.Marshal(cur)
	if err != nil {
		return out, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return out, err
	}
	for k, v := range fields {
		m[k] = v
	}
	merged, err := bson.Marshal(m)
	if err != nil {
		return out, err
	}
	if err := bson.Unmarshal(merged, &out); err != nil {
		return out, err
	}
	return out, nil
}
