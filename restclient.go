// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Implements the resource client talking to the REST API of a networking
// service with the tap-as-a-service extension enabled.

package taasctl

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/siemens/taasctl/api"
	log "github.com/sirupsen/logrus"
)

// RESTClientOptions allows some degree of control over how to use a
// networking service reachable at a given endpoint URL.
type RESTClientOptions struct {
	CommonClientOptions
	// InsecureSkipVerify skips verification of the service's server
	// certificate.
	InsecureSkipVerify bool
	// APIPath is the API version root below the endpoint; defaults to
	// DefaultAPIPath.
	APIPath string
}

// RESTClient implements the ResourceClient interface for a networking
// service reachable via its REST API endpoint.
type RESTClient struct {
	// Host+Port (+ optional path) URL of the networking service API root,
	// including the API version path.
	apiurl *url.URL
	opts   RESTClientOptions
	client *http.Client
}

var _ ResourceClient = (*RESTClient)(nil)

// NewRESTClient returns a new client for the networking service at the
// specified endpoint. If the endpoint doesn't start with a http/s scheme,
// then http is assumed.
func NewRESTClient(endpoint string, opts *RESTClientOptions) (*RESTClient, error) {
	if endpoint == "" {
		return nil, errors.New("missing networking service endpoint")
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "http://" + endpoint
	}
	surl, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid networking service endpoint: %w", err)
	}
	// Don't accept credentials, fragments, and query elements.
	if surl.User != nil || surl.Opaque != "" ||
		surl.RawQuery != "" || surl.Fragment != "" {
		return nil, errors.New("only host name, optional port number, and optional path allowed")
	}
	rc := &RESTClient{
		opts: RESTClientOptions{
			CommonClientOptions: CommonClientOptions{
				Timeout: DefaultServiceTimeout,
			},
		},
	}
	if opts != nil {
		rc.opts = *opts
	}
	if rc.opts.APIPath == "" {
		rc.opts.APIPath = DefaultAPIPath
	}
	surl.Path = path.Join("/", surl.Path, rc.opts.APIPath)
	rc.apiurl = surl
	httptrans := http.DefaultTransport.(*http.Transport).Clone()
	if rc.opts.InsecureSkipVerify && surl.Scheme == "https" {
		httptrans.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	rc.client = &http.Client{
		Timeout:   rc.opts.Timeout,
		Transport: httptrans,
	}
	return rc, nil
}

// Show returns the resource of the given kind and with the given ID.
func (rc *RESTClient) Show(kind api.Kind, id string) (api.Record, error) {
	var env map[string]api.Record
	if err := rc.do(http.MethodGet, rc.resourceURL(kind, id), nil, &env, kind, id); err != nil {
		return nil, err
	}
	return unwrap(env, kind)
}

// List returns all resources of the given kind, following the pagination
// links until the service has nothing more to offer.
func (rc *RESTClient) List(kind api.Kind) (api.Records, error) {
	plural := kind.Plural()
	linksKey := plural + "_links"
	all := api.Records{}
	next := rc.collectionURL(kind)
	for next != "" {
		var page map[string]json.RawMessage
		if err := rc.do(http.MethodGet, next, nil, &page, kind, ""); err != nil {
			return nil, err
		}
		var recs api.Records
		if raw, ok := page[plural]; ok {
			if err := json.Unmarshal(raw, &recs); err != nil {
				return nil, &TransportError{
					Message: fmt.Sprintf("cannot decode %s listing", kind.Noun()),
					Err:     err,
				}
			}
		}
		all = append(all, recs...)
		next = ""
		if raw, ok := page[linksKey]; ok {
			var links []api.Link
			if err := json.Unmarshal(raw, &links); err != nil {
				return nil, &TransportError{
					Message: fmt.Sprintf("cannot decode %s listing links", kind.Noun()),
					Err:     err,
				}
			}
			for _, link := range links {
				if link.Rel == "next" {
					next = link.Href
					break
				}
			}
		}
		// Guard against services that return a next link with an empty page.
		if len(recs) == 0 {
			next = ""
		}
	}
	return all, nil
}

// Create a new resource of the given kind with the specified fields.
func (rc *RESTClient) Create(kind api.Kind, fields api.Record) (api.Record, error) {
	var env map[string]api.Record
	body := map[string]api.Record{string(kind): fields}
	if err := rc.do(http.MethodPost, rc.collectionURL(kind), body, &env, kind, ""); err != nil {
		return nil, err
	}
	return unwrap(env, kind)
}

// Update the specified fields of the resource with the given kind and ID.
func (rc *RESTClient) Update(kind api.Kind, id string, fields api.Record) (api.Record, error) {
	var env map[string]api.Record
	body := map[string]api.Record{string(kind): fields}
	if err := rc.do(http.MethodPut, rc.resourceURL(kind, id), body, &env, kind, id); err != nil {
		return nil, err
	}
	return unwrap(env, kind)
}

// Delete the resource with the given kind and ID.
func (rc *RESTClient) Delete(kind api.Kind, id string) error {
	return rc.do(http.MethodDelete, rc.resourceURL(kind, id), nil, nil, kind, id)
}

func (rc *RESTClient) collectionURL(kind api.Kind) string {
	u := *rc.apiurl
	u.Path = path.Join(u.Path, kind.CollectionPath())
	return u.String()
}

func (rc *RESTClient) resourceURL(kind api.Kind, id string) string {
	u := *rc.apiurl
	// IDs and names must end up as a single path segment, so escape any
	// slashes et cetera they might contain.
	u.Path = path.Join(u.Path, kind.CollectionPath()) + "/" + id
	u.RawPath = path.Join(rc.apiurl.EscapedPath(), kind.CollectionPath()) + "/" + url.PathEscape(id)
	return u.String()
}

// do sends a request with an optional JSON body to the networking service and
// decodes the JSON response into out, unless out is nil. The kind and id are
// only used for error reporting.
func (rc *RESTClient) do(method, u string, body any, out any, kind api.Kind, id string) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot encode %s request: %w", kind.Noun(), err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, u, rd)
	if err != nil {
		return &TransportError{Message: "cannot create new HTTP request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "taasctl/"+SemVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rc.opts.Token != "" {
		req.Header.Set("X-Auth-Token", rc.opts.Token)
	}
	log.Debugf("%s %s, time limit %s", method, u, rc.opts.Timeout)
	res, err := rc.client.Do(req)
	if err != nil {
		return &TransportError{Message: "networking service request failed", Err: err}
	}
	defer res.Body.Close()
	log.Debugf("%s %s: %s", method, u, res.Status)
	if res.StatusCode == http.StatusNotFound {
		return &NotFoundError{Kind: kind, NameOrID: id, Message: serviceMessage(res.Body)}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &TransportError{StatusCode: res.StatusCode, Message: serviceMessage(res.Body)}
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &TransportError{
			Message: fmt.Sprintf("cannot decode %s response", kind.Noun()),
			Err:     err,
		}
	}
	return nil
}

// unwrap returns the record inside the "<kind>" envelope of a response.
func unwrap(env map[string]api.Record, kind api.Kind) (api.Record, error) {
	rec, ok := env[string(kind)]
	if !ok || rec == nil {
		return nil, &TransportError{
			Message: fmt.Sprintf("malformed response lacking %q element", string(kind)),
		}
	}
	return rec, nil
}

// serviceMessage returns the message of an error document in the response
// body, or "" if there is none.
func serviceMessage(body io.Reader) string {
	var serr api.ServiceError
	if err := json.NewDecoder(body).Decode(&serr); err != nil {
		return ""
	}
	return serr.Error.Message
}
