package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	jobuc "job-portal/internal/usecase/job"

	"github.com/google/uuid"
)

var errTrailingData = errors.New("unexpected data after JSON body")

// numericField accepts a JSON string or a JSON number. null leaves it unset.
type numericField struct {
	jobuc.NumericInput
}

func (n *numericField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		n.NumericInput = jobuc.NumericInput{}
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n.NumericInput = jobuc.NumericInput{Text: s}
		return nil
	default:
		var num json.Number
		if err := json.Unmarshal(b, &num); err != nil {
			return err
		}
		n.NumericInput = jobuc.NumericInput{Text: num.String(), IsNumber: true}
		return nil
	}
}

type createJobRequest struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Requirements string       `json:"requirements"`
	Salary       numericField `json:"salary"`
	Location     string       `json:"location"`
	JobType      string       `json:"jobType"`
	Experience   numericField `json:"experience"`
	Position     string       `json:"position"`
	CompanyID    string       `json:"companyId"`
}

func (r createJobRequest) toInput(createdBy uuid.UUID) jobuc.CreateInput {
	return jobuc.CreateInput{
		Title:        r.Title,
		Description:  r.Description,
		Requirements: r.Requirements,
		Salary:       r.Salary.NumericInput,
		Location:     r.Location,
		JobType:      r.JobType,
		Experience:   r.Experience.NumericInput,
		Position:     r.Position,
		CompanyID:    r.CompanyID,
		CreatedBy:    createdBy,
	}
}

// decodeStrict decodes a JSON object rejecting unknown fields and trailing
// data. An empty body decodes as an empty object.
func decodeStrict(body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
