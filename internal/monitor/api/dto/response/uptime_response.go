package response

type UptimeResponse struct {
	EndpointName     string  `json:"endpoint_name"`
	UptimePercentage float64 `json:"uptime_percentage"`
}
