package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/structs"
	"github.com/google/uuid"
	"github.com/questx-lab/wizard/internal/model"
	"github.com/questx-lab/wizard/pkg/api"
	"github.com/questx-lab/wizard/pkg/authenticator"
	"github.com/questx-lab/wizard/pkg/errorx"
	"github.com/questx-lab/wizard/pkg/xcontext"
)

const createCommunityPath = "/communities"

var ErrNoEnvelope = errors.New("no response envelope")

type CommunityCaller interface {
	// CreateCommunity returns an error only when no envelope could be read.
	// A rejected creation is a response with Success false.
	CreateCommunity(context.Context, *model.CreateCommunityRequest) (*model.CreateCommunityResponse, error)
}

type communityCaller struct {
	apiGenerator api.Generator
	now          func() time.Time
}

// NewCommunityCaller sends requests through apiGenerator. The access token is
// read from the configs carried by each call's context.
func NewCommunityCaller(apiGenerator api.Generator) *communityCaller {
	return &communityCaller{
		apiGenerator: apiGenerator,
		now:          time.Now,
	}
}

func (c *communityCaller) CreateCommunity(
	ctx context.Context, req *model.CreateCommunityRequest,
) (*model.CreateCommunityResponse, error) {
	accessToken := xcontext.Configs(ctx).Api.AccessToken
	if accessToken != "" && authenticator.IsExpired(accessToken, c.now()) {
		return nil, errorx.New(errorx.Unauthenticated, "Your session has expired, please sign in again")
	}

	body, err := newCreateCommunityBody(req)
	if err != nil {
		return nil, err
	}

	requestID := xcontext.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	client := c.apiGenerator.New(createCommunityPath).
		Header("Accept", "application/json").
		Header("X-Request-Id", requestID).
		Body(body)

	var opts []api.Opt
	if accessToken != "" {
		opts = append(opts, api.OAuth2("Bearer", accessToken))
	}

	xcontext.Logger(ctx).Debugf("Creating community %q (request %s)", req.Name, requestID)
	resp, err := client.POST(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return parseCreateCommunityResponse(resp)
}

func parseCreateCommunityResponse(resp *api.Response) (*model.CreateCommunityResponse, error) {
	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, fmt.Errorf("%w (status %d): %.200s", ErrNoEnvelope, resp.Code, resp.RawBody)
	}

	if _, found := body["success"]; !found {
		return nil, fmt.Errorf("%w (status %d): missing success", ErrNoEnvelope, resp.Code)
	}

	success, err := body.GetBool("success")
	if err != nil {
		return nil, fmt.Errorf("%w (status %d): %v", ErrNoEnvelope, resp.Code, err)
	}

	result := &model.CreateCommunityResponse{Success: success}
	if msg, ok := body["error"].(string); ok {
		result.Error = msg
	}

	if data, err := body.GetJSON("data"); err == nil && data != nil {
		result.ID, _ = data.GetString("id")
	}

	return result, nil
}

func newCreateCommunityBody(req *model.CreateCommunityRequest) (api.Multipart, error) {
	body := api.Multipart{Fields: map[string]string{}}

	for _, f := range structs.New(req).Fields() {
		name, _, _ := strings.Cut(f.Tag("structs"), ",")
		if name == "" {
			name = f.Name()
		}

		switch v := f.Value().(type) {
		case string:
			body.Fields[name] = v
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return api.Multipart{}, fmt.Errorf("cannot encode field %s: %w", name, err)
			}
			body.Fields[name] = string(b)
		}
	}

	media := []struct{ field, uri string }{{"logo", req.Logo}, {"cover", req.Cover}}
	for _, m := range media {
		field, uri := m.field, m.uri
		if uri == "" {
			continue
		}

		path, isLocal := localPath(uri)
		if !isLocal {
			body.Fields[field] = uri
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return api.Multipart{}, fmt.Errorf("cannot read %s image: %w", field, err)
		}

		body.Files = append(body.Files, api.File{
			Field:    field,
			FileName: filepath.Base(path),
			Mime:     mime.TypeByExtension(filepath.Ext(path)),
			Data:     data,
		})
	}

	return body, nil
}

// localPath returns the file path of a picked image when it lives on the local
// file system. Other URIs are passed to the server untouched.
func localPath(uri string) (string, bool) {
	if !strings.Contains(uri, ":") {
		return uri, true
	}

	u, err := url.Parse(uri)
	if err != nil {
		return "", false
	}

	if u.Scheme == "file" {
		return u.Path, true
	}

	return "", false
}
