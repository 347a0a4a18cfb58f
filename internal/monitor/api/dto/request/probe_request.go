package request

type ProbeRequest struct {
	URL            string `json:"url" binding:"required,url"`
	Method         string `json:"method" binding:"omitempty,oneof=GET HEAD PING POST PUT PATCH DELETE"`
	TimeoutSeconds int    `json:"timeout_seconds" binding:"omitempty,gte=1,lte=60"`
}
