package dto

const (
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
)

type SubmitRunResponse struct {
	Status   string  `json:"status"`
	RunType  string  `json:"run_type"`
	Universe string  `json:"universe"`
	Filename *string `json:"filename"`
}

type RunResponse struct {
	Status   string  `json:"status"`
	RunType  string  `json:"run_type"`
	Universe string  `json:"universe"`
	Filename *string `json:"filename"`
	FileData *string `json:"file_data"`
}

type NotFoundResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
