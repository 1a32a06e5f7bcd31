package util

import "encoding/json"

// JSONString marshals v, swallowing the error — meant for debug
// dumps/log lines, never for data the caller needs to trust.
func JSONString(v interface{}) string {
	data, _ := json.Marshal(v)
	return string(data)
}

// JSONPretty is JSONString with indentation.
func JSONPretty(v interface{}) string {
	data, _ := json.MarshalIndent(v, "", " ")
	return string(data)
}
