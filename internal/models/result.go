package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

type ScreeningRequest struct {
	JDDocumentID      string   `json:"jd_document_id"`
	ResumeDocumentIDs []string `json:"resume_document_ids"`
	Keywords          []string `json:"keywords"`
	Strictness        int      `json:"strictness"`
	Model             string   `json:"model"`
}

type ScreeningResponse struct {
	ID          string `json:"id"`
	Evaluations int    `json:"evaluations"`
	Status      string `json:"status"`
}

type EvaluationResponse struct {
	ID           uint     `json:"id"`
	ScreeningID  string   `json:"screening_id"`
	FileName     string   `json:"file_name"`
	Status       string   `json:"status"`
	Score        *float64 `json:"score,omitempty"`
	Verdict      *string  `json:"verdict,omitempty"`
	Feedback     *string  `json:"feedback,omitempty"`
	ErrorMessage *string  `json:"error_message,omitempty"`
}

type ScreeningDetailResponse struct {
	ID          string               `json:"id"`
	Strictness  int                  `json:"strictness"`
	Model       string               `json:"model"`
	Keywords    []string             `json:"keywords"`
	Evaluations []EvaluationResponse `json:"evaluations"`
}

type CandidateMatchResponse struct {
	EvaluationID uint    `json:"evaluation_id"`
	FileName     string  `json:"file_name"`
	Score        float64 `json:"score"`
	Verdict      string  `json:"verdict"`
	Similarity   float32 `json:"similarity"`
}

// NewEvaluationResponse maps a stored evaluation row onto the API shape.
func NewEvaluationResponse(eval *Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:           eval.ID,
		ScreeningID:  eval.ScreeningID.String(),
		FileName:     eval.FileName,
		Status:       string(eval.Status),
		Score:        eval.Score,
		Verdict:      eval.Verdict,
		Feedback:     eval.Feedback,
		ErrorMessage: eval.ErrorMessage,
	}
}
