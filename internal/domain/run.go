package domain

// Represents the single submitted run configuration.
// Filename and FileData are nil when the submission carried no file.
// FileData holds the standard base64 encoding of the uploaded bytes.
type RunRecord struct {
	RunType  string
	Universe string
	Filename *string
	FileData *string
}

// HasFile reports whether the run was submitted with a track file.
func (r RunRecord) HasFile() bool {
	return r.Filename != nil
}
