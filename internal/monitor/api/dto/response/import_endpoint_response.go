package response

type ImportEndpointResponse struct {
	ImportedCount   int64    `json:"imported_count"`
	FailedCount     int      `json:"failed_count"`
	FailedEndpoints []string `json:"failed_endpoints,omitempty"`
}
