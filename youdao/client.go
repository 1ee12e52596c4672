package youdao

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/pagemark/model"
)

// DefaultEndpoint is the production Youdao OCR API endpoint.
const DefaultEndpoint = "https://openapi.youdao.com/ocrapi"

// Config holds the settings for a Youdao OCR client.
type Config struct {
	// AppKey is the application key issued by Youdao.
	AppKey string

	// AppSecret is the application secret used for request signing.
	AppSecret string

	// Endpoint is the API URL. Defaults to DefaultEndpoint when empty.
	Endpoint string

	// LangType selects the recognition language ("auto" detects it).
	LangType string

	// DetectType selects the recognition granularity.
	DetectType string

	// Column controls multi-column layout analysis ("onecolumn" or "columns").
	Column string

	// HTTPClient is the client used for requests. Defaults to a client
	// with a 30 second timeout when nil.
	HTTPClient *http.Client
}

// DefaultConfig returns a Config with sensible defaults. AppKey and
// AppSecret must still be provided by the caller.
func DefaultConfig() Config {
	return Config{
		Endpoint:   DefaultEndpoint,
		LangType:   "auto",
		DetectType: "10012",
		Column:     "columns",
	}
}

// Client talks to the Youdao OCR API.
type Client struct {
	config Config
	http   *http.Client
}

// NewClient creates a Youdao OCR client with default settings.
func NewClient(appKey, appSecret string) *Client {
	config := DefaultConfig()
	config.AppKey = appKey
	config.AppSecret = appSecret
	return NewClientWithConfig(config)
}

// NewClientWithConfig creates a Youdao OCR client with custom settings.
func NewClientWithConfig(config Config) *Client {
	defaults := DefaultConfig()
	if config.Endpoint == "" {
		config.Endpoint = defaults.Endpoint
	}
	if config.LangType == "" {
		config.LangType = defaults.LangType
	}
	if config.DetectType == "" {
		config.DetectType = defaults.DetectType
	}
	if config.Column == "" {
		config.Column = defaults.Column
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{config: config, http: httpClient}
}

// Recognize submits an image to the OCR API and returns the parsed result.
// The image is base64-encoded and sent as a signed form POST.
func (c *Client) Recognize(ctx context.Context, image []byte) (*model.Result, error) {
	raw, err := c.RecognizeRaw(ctx, image)
	if err != nil {
		return nil, err
	}
	return model.ParseResult(raw)
}

// RecognizeRaw submits an image to the OCR API and returns the raw JSON
// response body. Callers that want structured access should use Recognize;
// the raw form is useful for caching responses to disk.
func (c *Client) RecognizeRaw(ctx context.Context, image []byte) ([]byte, error) {
	if c.config.AppKey == "" || c.config.AppSecret == "" {
		return nil, errors.New("youdao: app key and secret are required")
	}
	if len(image) == 0 {
		return nil, errors.New("youdao: empty image")
	}

	q := base64.StdEncoding.EncodeToString(image)
	salt, err := newSalt()
	if err != nil {
		return nil, fmt.Errorf("youdao: %w", err)
	}
	curtime := strconv.FormatInt(time.Now().Unix(), 10)

	form := url.Values{}
	form.Set("img", q)
	form.Set("langType", c.config.LangType)
	form.Set("detectType", c.config.DetectType)
	form.Set("imageType", "1")
	form.Set("angle", "0")
	form.Set("column", c.config.Column)
	form.Set("rotate", "donot_rotate")
	form.Set("docType", "json")
	form.Set("signType", "v3")
	form.Set("appKey", c.config.AppKey)
	form.Set("salt", salt)
	form.Set("curtime", curtime)
	form.Set("sign", Sign(c.config.AppKey, q, salt, curtime, c.config.AppSecret))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("youdao: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youdao: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("youdao: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youdao: unexpected status %d", resp.StatusCode)
	}

	// The API reports failures in-band with a non-zero errorCode.
	var status struct {
		ErrorCode string `json:"errorCode"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedInput, err)
	}
	if status.ErrorCode != "" && status.ErrorCode != "0" {
		return nil, fmt.Errorf("youdao: API error code %s", status.ErrorCode)
	}

	return body, nil
}

// Sign computes the v3 request signature: the SHA-256 hex digest of the
// app key, the truncated payload, the salt, the timestamp, and the secret.
func Sign(appKey, q, salt, curtime, secret string) string {
	sum := sha256.Sum256([]byte(appKey + truncate(q) + salt + curtime + secret))
	return hex.EncodeToString(sum[:])
}

// truncate shortens long payloads for signing: the first ten characters,
// the payload length, and the last ten characters. Payloads of twenty
// characters or fewer are used as-is.
func truncate(q string) string {
	if len(q) <= 20 {
		return q
	}
	return q[:10] + strconv.Itoa(len(q)) + q[len(q)-10:]
}

func newSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
