// Package api is the gateway to the personal Moodle-sync server. Each
// read returns the full current snapshot of one collection; there is no
// pagination and no delta protocol. TriggerSync returns once the server
// accepts the request, not once synchronization completes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/omripeer/studydeck/internal/domain"
)

// Client provides access to the sync server's collections.
type Client interface {
	Courses(ctx context.Context) ([]domain.Course, error)
	Assignments(ctx context.Context) ([]domain.Assignment, error)
	// Resources lists materials; courseID 0 means all courses.
	Resources(ctx context.Context, courseID int64) ([]domain.Resource, error)
	// NewResources lists the server-side "new" subset.
	NewResources(ctx context.Context) ([]domain.Resource, error)
	Schedule(ctx context.Context) ([]domain.ScheduleItem, error)
	Exams(ctx context.Context) ([]domain.Exam, error)

	AddExam(ctx context.Context, exam domain.Exam) (*domain.Exam, error)
	DeleteExam(ctx context.Context, id int64) error

	// DownloadCourseZip streams a course archive into w.
	DownloadCourseZip(ctx context.Context, courseID int64, w io.Writer) (int64, error)

	// TriggerSync asks the server to start a sync run. Accepted, not
	// completed: callers re-fetch after the configured settle delay.
	TriggerSync(ctx context.Context) error

	// SettleDelay is how long callers should wait after TriggerSync
	// before invalidating cached snapshots.
	SettleDelay() time.Duration
}

// httpClient implements Client over the server's REST API.
type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Client that talks to the configured sync server.
func NewClient(cfg Config) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

func (c *httpClient) SettleDelay() time.Duration {
	return time.Duration(c.cfg.SyncSettleMs) * time.Millisecond
}

func (c *httpClient) Courses(ctx context.Context) ([]domain.Course, error) {
	var out []domain.Course
	if err := c.getJSON(ctx, "/api/courses/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) Assignments(ctx context.Context) ([]domain.Assignment, error) {
	var out []domain.Assignment
	if err := c.getJSON(ctx, "/api/assignments/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) Resources(ctx context.Context, courseID int64) ([]domain.Resource, error) {
	var query url.Values
	if courseID != 0 {
		query = url.Values{"course_id": {strconv.FormatInt(courseID, 10)}}
	}
	var out []domain.Resource
	if err := c.getJSON(ctx, "/api/resources/", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) NewResources(ctx context.Context) ([]domain.Resource, error) {
	var out []domain.Resource
	if err := c.getJSON(ctx, "/api/resources/new", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) Schedule(ctx context.Context) ([]domain.ScheduleItem, error) {
	var out []domain.ScheduleItem
	if err := c.getJSON(ctx, "/api/schedule/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) Exams(ctx context.Context) ([]domain.Exam, error) {
	var out []domain.Exam
	if err := c.getJSON(ctx, "/api/exams/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *httpClient) AddExam(ctx context.Context, exam domain.Exam) (*domain.Exam, error) {
	body, err := json.Marshal(exam)
	if err != nil {
		return nil, fmt.Errorf("marshaling exam: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/api/exams/", nil, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var created domain.Exam
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decoding exam response: %w", err)
	}
	return &created, nil
}

func (c *httpClient) DeleteExam(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/exams/%d", id), nil, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *httpClient) DownloadCourseZip(ctx context.Context, courseID int64, w io.Writer) (int64, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/resources/download-zip/%d", courseID), nil, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("writing archive: %w", err)
	}
	return n, nil
}

func (c *httpClient) TriggerSync(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/sync/", nil, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// getJSON issues a GET and decodes the JSON body into out.
func (c *httpClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// do issues one request and maps failures onto the package sentinels.
// No retries: the user-facing remedy for any failure is another sync.
func (c *httpClient) do(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	// cancel when the body is consumed, not here: the caller reads the body.
	u := c.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		if isConnectionError(err) || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("requesting %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("%w: %s returned status %d: %s", ErrServerStatus, path, resp.StatusCode, string(msg))
	}

	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// cancelOnClose releases the request context when the body is closed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
