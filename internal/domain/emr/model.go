package emr

// PushMessage is the confirmation returned for every EMR submission.
const PushMessage = "Note pushed to EMR successfully"

// Submission describes a note sent to the EMR. The body itself is not kept.
type Submission struct {
	ID          string
	ContentType string
	Size        int64
}

// PushResult is the wire response of POST /api/save-to-emr.
type PushResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
