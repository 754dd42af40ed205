// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package web

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/MKhiriev/go-notes/internal/handler/middleware"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
)

const proxyErrorCode = "upstream_unavailable"

// newAPIProxy forwards requests to upstream with the trace id attached.
// Requests that cannot reach upstream get a 502 error envelope, so clients
// of the proxied API see the same response shape as from the API itself.
func newAPIProxy(upstream string) (http.Handler, error) {
	target, err := url.Parse(upstream)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProxyUpstream, err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("%w: %q must include scheme and host", ErrInvalidProxyUpstream, upstream)
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			if traceID, ok := utils.GetTraceIDFromContext(pr.In.Context()); ok {
				pr.Out.Header.Set(middleware.TraceIDHeader, traceID)
			}
		},
		ModifyResponse: func(resp *http.Response) error {
			// already set by the trace id middleware
			resp.Header.Del(middleware.TraceIDHeader)
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.FromRequest(r).Error().Err(err).Str("upstream", target.String()).Msg("proxy request failed")
			_, _ = utils.WriteError(w, proxyErrorCode, "Notes API is unavailable", http.StatusBadGateway)
		},
	}, nil
}
