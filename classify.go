package swish

import (
	"encoding/json"
	"net/http"
)

// classify turns a completed exchange into the response body and headers, or
// a typed error. The provider is inconsistent about failure shapes: plain
// text for 404s, a JSON object or a JSON array of objects for other
// rejections, and occasionally bodies that are not JSON at all. The decision
// order here normalizes all of them without losing information.
func classify(status int, header http.Header, body []byte) ([]byte, http.Header, error) {
	if status == http.StatusNotFound {
		return nil, nil, &RequestError{HTTPStatus: status, Message: string(body)}
	}
	if status < 200 || status > 299 {
		return nil, nil, classifyErrorBody(status, body)
	}
	return body, header, nil
}

func classifyErrorBody(status int, body []byte) error {
	var val any
	if err := json.Unmarshal(body, &val); err != nil {
		return &RequestError{HTTPStatus: status, Message: err.Error()}
	}

	if _, isArray := val.([]any); !isArray {
		var reqErr RequestError
		if err := json.Unmarshal(body, &reqErr); err != nil {
			return &RequestError{HTTPStatus: status, Message: err.Error()}
		}
		reqErr.HTTPStatus = status
		return &reqErr
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		return &RequestError{HTTPStatus: status, Message: err.Error()}
	}
	reqErrs := make(RequestErrors, 0, len(elems))
	for _, elem := range elems {
		var reqErr RequestError
		if err := json.Unmarshal(elem, &reqErr); err != nil {
			// A malformed entry must not hide the others.
			continue
		}
		reqErr.HTTPStatus = status
		reqErrs = append(reqErrs, &reqErr)
	}
	return reqErrs
}
