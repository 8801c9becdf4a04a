package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/GHutch55/exlog/api/v1/models"
)

const maxBodyBytes = 1 << 20

var errMalformedBody = errors.New("malformed request body")

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// decodeJSON reads a JSON object into dst. An empty body leaves dst as is,
// which the validator then reports field by field.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errMalformedBody
	}
	return nil
}

// formValues parses an urlencoded or multipart body.
func formValues(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, errMalformedBody
		}
		return r.PostForm, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, errMalformedBody
	}
	return r.PostForm, nil
}

func formField(values url.Values, key string) models.Field {
	if !values.Has(key) {
		return models.Field{}
	}
	return models.NewField(values.Get(key))
}

func bindUserInput(w http.ResponseWriter, r *http.Request) (models.UserInput, error) {
	var in models.UserInput
	if isJSON(r) {
		err := decodeJSON(w, r, &in)
		return in, err
	}

	values, err := formValues(w, r)
	if err != nil {
		return in, err
	}
	in.Username = formField(values, "username")
	return in, nil
}

func bindExerciseInput(w http.ResponseWriter, r *http.Request) (models.ExerciseInput, error) {
	var in models.ExerciseInput
	if isJSON(r) {
		err := decodeJSON(w, r, &in)
		return in, err
	}

	values, err := formValues(w, r)
	if err != nil {
		return in, err
	}
	in.Description = formField(values, "description")
	in.Duration = formField(values, "duration")
	in.Date = formField(values, "date")
	return in, nil
}

func bindLogQuery(r *http.Request) models.LogQuery {
	values := r.URL.Query()
	return models.LogQuery{
		From:  formField(values, "from"),
		To:    formField(values, "to"),
		Limit: formField(values, "limit"),
	}
}
