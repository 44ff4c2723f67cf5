package firebird

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Alwanly/firebird-track/pkg/logger"
)

const (
	DefaultVersion = "v1"

	// HeaderProjectID carries the project identifier on every submission.
	HeaderProjectID = "projectId"
)

// EndpointPath returns the save-user-details path for an API version.
func EndpointPath(version string) string {
	return "/firebird/telcom/" + version + "/save-user-details"
}

// Track collects user attributes and submits them in a single POST.
// A Track is not safe for concurrent use.
type Track struct {
	projectID  string
	version    string
	url        string
	attributes []Attribute

	transport   Transport
	httpTimeout time.Duration
	logger      *logger.CanonicalLogger
}

type Option func(*Track)

// WithVersion overrides the API version used in the endpoint path.
func WithVersion(version string) Option {
	return func(t *Track) {
		if version != "" {
			t.version = version
		}
	}
}

// WithTransport injects the capability used by Execute.
func WithTransport(tr Transport) Option {
	return func(t *Track) {
		t.transport = tr
	}
}

// WithHTTPTimeout sets the client timeout of the default HTTP transport.
// It has no effect together with WithTransport.
func WithHTTPTimeout(d time.Duration) Option {
	return func(t *Track) {
		t.httpTimeout = d
	}
}

// WithLogger enables diagnostic logging of submissions.
func WithLogger(l *logger.CanonicalLogger) Option {
	return func(t *Track) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates a Track for projectID posting to apiURL.
func New(projectID, apiURL string, opts ...Option) (*Track, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("%w: project id cannot be empty", ErrInvalidConfiguration)
	}

	t := &Track{
		projectID: projectID,
		version:   DefaultVersion,
		logger:    logger.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.url = strings.TrimRight(apiURL, "/") + EndpointPath(t.version)
	if t.transport == nil {
		t.transport = NewHTTPTransport(t.httpTimeout)
	}

	return t, nil
}

func (t *Track) ProjectID() string { return t.projectID }

func (t *Track) Version() string { return t.version }

// URL is the fully resolved submission URL.
func (t *Track) URL() string { return t.url }

// Attributes returns a copy of the collected attributes in insertion order.
func (t *Track) Attributes() []Attribute {
	out := make([]Attribute, len(t.attributes))
	copy(out, t.attributes)
	return out
}

func (t *Track) Len() int { return len(t.attributes) }

func (t *Track) SetFirstName(value string) error {
	return t.setValidated(FieldFirstName, value)
}

func (t *Track) SetLastName(value string) error {
	return t.setValidated(FieldLastName, value)
}

func (t *Track) SetUsername(value string) error {
	return t.setValidated(FieldUsername, value)
}

func (t *Track) SetEmail(value string) error {
	return t.setValidated(FieldEmail, value)
}

func (t *Track) SetMobileNumber(value string) error {
	return t.setValidated(FieldMobileNumber, value)
}

func (t *Track) SetGender(value string) {
	t.add(FieldGender, value, String)
}

func (t *Track) SetBirthDate(value string) {
	t.add(FieldBirthDate, value, String)
}

func (t *Track) SetAddress(value string) {
	t.add(FieldAddress, value, String)
}

func (t *Track) SetWhatsappNumber(value string) {
	t.add(FieldWhatsappNumber, value, String)
}

func (t *Track) SetLocation(value string) {
	t.add(FieldLocation, value, String)
}

func (t *Track) SetCity(value string) {
	t.add(FieldCity, value, String)
}

func (t *Track) SetState(value string) {
	t.add(FieldState, value, String)
}

func (t *Track) SetDistrict(value string) {
	t.add(FieldDistrict, value, String)
}

// SetUserAttribute appends an arbitrary attribute. dataType is resolved with
// ParseDataType; key and value are not validated.
func (t *Track) SetUserAttribute(key string, value any, dataType string) error {
	dt, err := ParseDataType(dataType)
	if err != nil {
		return err
	}
	t.add(key, value, dt)
	return nil
}

func (t *Track) setValidated(name, value string) error {
	if err := ValidateField(name, value); err != nil {
		return err
	}
	t.add(name, value, String)
	return nil
}

func (t *Track) add(name string, value any, dt DataType) {
	t.attributes = append(t.attributes, Attribute{Name: name, Value: value, DataType: dt})
}

// Execute posts every collected attribute and returns the decoded JSON
// response. The collection is kept, so a second call resubmits it.
func (t *Track) Execute(ctx context.Context) (any, error) {
	if len(t.attributes) == 0 {
		return nil, ErrNoAttributesSet
	}

	body, err := json.Marshal(t.attributes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user details: %w", err)
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set(HeaderProjectID, strings.TrimSpace(t.projectID))

	t.logger.Debug("submitting user details",
		logger.String(logger.FieldTargetURL, t.url),
		logger.String(logger.FieldProjectID, strings.TrimSpace(t.projectID)),
		logger.Int(logger.FieldAttributeCount, len(t.attributes)),
		logger.Any("attributes", t.attributes),
	)

	resp, err := t.transport.Send(ctx, &Request{URL: t.url, Header: header, Body: body})
	if err != nil {
		t.logger.WithError(err).Error("user details request failed", logger.String(logger.FieldTargetURL, t.url))
		return nil, &TransportError{URL: t.url, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		t.logger.Error("user details rejected",
			logger.String(logger.FieldTargetURL, t.url),
			logger.Int(logger.FieldStatusCode, resp.StatusCode),
		)
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil, nil
	}

	var result any
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	t.logger.Debug("user details saved", logger.Int(logger.FieldStatusCode, resp.StatusCode))

	return result, nil
}
