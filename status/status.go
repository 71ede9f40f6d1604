// Copyright 2026 The Rested Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import "net/http"

// Response carries an HTTP status code alongside the payload a handler
// wants serialized. Handlers return it from their body to override the
// default 200; the resource runtime unwraps it before encoding.
type Response struct {
	code    int
	payload any
}

// New builds a Response with an arbitrary status code.
// Prefer the named constructors for standard codes.
func New(code int, payload any) Response {
	return Response{code: code, payload: payload}
}

// StatusCode returns the HTTP status code to write.
func (r Response) StatusCode() int {
	return r.code
}

// Body returns the value to serialize. Payloads on error responses
// (code >= 400) are wrapped as {"error": payload}; success payloads pass
// through unchanged.
func (r Response) Body() any {
	if r.code >= 400 {
		return map[string]any{"error": r.payload}
	}
	return r.payload
}

// 1xx

func Continue(payload any) Response           { return New(http.StatusContinue, payload) }
func SwitchingProtocols(payload any) Response { return New(http.StatusSwitchingProtocols, payload) }
func Processing(payload any) Response         { return New(http.StatusProcessing, payload) }
func EarlyHints(payload any) Response         { return New(http.StatusEarlyHints, payload) }

// 2xx

func OK(payload any) Response       { return New(http.StatusOK, payload) }
func Created(payload any) Response  { return New(http.StatusCreated, payload) }
func Accepted(payload any) Response { return New(http.StatusAccepted, payload) }
func NonAuthoritativeInfo(payload any) Response {
	return New(http.StatusNonAuthoritativeInfo, payload)
}
func NoContent(payload any) Response      { return New(http.StatusNoContent, payload) }
func ResetContent(payload any) Response   { return New(http.StatusResetContent, payload) }
func PartialContent(payload any) Response { return New(http.StatusPartialContent, payload) }
func MultiStatus(payload any) Response    { return New(http.StatusMultiStatus, payload) }
func AlreadyReported(payload any) Response {
	return New(http.StatusAlreadyReported, payload)
}
func IMUsed(payload any) Response { return New(http.StatusIMUsed, payload) }

// 3xx

func MultipleChoices(payload any) Response  { return New(http.StatusMultipleChoices, payload) }
func MovedPermanently(payload any) Response { return New(http.StatusMovedPermanently, payload) }
func Found(payload any) Response            { return New(http.StatusFound, payload) }
func SeeOther(payload any) Response         { return New(http.StatusSeeOther, payload) }
func NotModified(payload any) Response      { return New(http.StatusNotModified, payload) }
func UseProxy(payload any) Response         { return New(http.StatusUseProxy, payload) }
func TemporaryRedirect(payload any) Response {
	return New(http.StatusTemporaryRedirect, payload)
}
func PermanentRedirect(payload any) Response {
	return New(http.StatusPermanentRedirect, payload)
}

// 4xx

func BadRequest(payload any) Response      { return New(http.StatusBadRequest, payload) }
func Unauthorized(payload any) Response    { return New(http.StatusUnauthorized, payload) }
func PaymentRequired(payload any) Response { return New(http.StatusPaymentRequired, payload) }
func Forbidden(payload any) Response       { return New(http.StatusForbidden, payload) }
func NotFound(payload any) Response        { return New(http.StatusNotFound, payload) }
func MethodNotAllowed(payload any) Response {
	return New(http.StatusMethodNotAllowed, payload)
}
func NotAcceptable(payload any) Response { return New(http.StatusNotAcceptable, payload) }
func ProxyAuthRequired(payload any) Response {
	return New(http.StatusProxyAuthRequired, payload)
}
func RequestTimeout(payload any) Response { return New(http.StatusRequestTimeout, payload) }
func Conflict(payload any) Response       { return New(http.StatusConflict, payload) }
func Gone(payload any) Response           { return New(http.StatusGone, payload) }
func LengthRequired(payload any) Response { return New(http.StatusLengthRequired, payload) }
func PreconditionFailed(payload any) Response {
	return New(http.StatusPreconditionFailed, payload)
}
func RequestEntityTooLarge(payload any) Response {
	return New(http.StatusRequestEntityTooLarge, payload)
}
func RequestURITooLong(payload any) Response {
	return New(http.StatusRequestURITooLong, payload)
}
func UnsupportedMediaType(payload any) Response {
	return New(http.StatusUnsupportedMediaType, payload)
}
func RequestedRangeNotSatisfiable(payload any) Response {
	return New(http.StatusRequestedRangeNotSatisfiable, payload)
}
func ExpectationFailed(payload any) Response {
	return New(http.StatusExpectationFailed, payload)
}
func Teapot(payload any) Response { return New(http.StatusTeapot, payload) }
func MisdirectedRequest(payload any) Response {
	return New(http.StatusMisdirectedRequest, payload)
}
func UnprocessableEntity(payload any) Response {
	return New(http.StatusUnprocessableEntity, payload)
}
func Locked(payload any) Response           { return New(http.StatusLocked, payload) }
func FailedDependency(payload any) Response { return New(http.StatusFailedDependency, payload) }
func TooEarly(payload any) Response         { return New(http.StatusTooEarly, payload) }
func UpgradeRequired(payload any) Response  { return New(http.StatusUpgradeRequired, payload) }
func PreconditionRequired(payload any) Response {
	return New(http.StatusPreconditionRequired, payload)
}
func TooManyRequests(payload any) Response {
	return New(http.StatusTooManyRequests, payload)
}
func RequestHeaderFieldsTooLarge(payload any) Response {
	return New(http.StatusRequestHeaderFieldsTooLarge, payload)
}
func UnavailableForLegalReasons(payload any) Response {
	return New(http.StatusUnavailableForLegalReasons, payload)
}

// 5xx

func InternalServerError(payload any) Response {
	return New(http.StatusInternalServerError, payload)
}
func NotImplemented(payload any) Response { return New(http.StatusNotImplemented, payload) }
func BadGateway(payload any) Response     { return New(http.StatusBadGateway, payload) }
func ServiceUnavailable(payload any) Response {
	return New(http.StatusServiceUnavailable, payload)
}
func GatewayTimeout(payload any) Response { return New(http.StatusGatewayTimeout, payload) }
func HTTPVersionNotSupported(payload any) Response {
	return New(http.StatusHTTPVersionNotSupported, payload)
}
func VariantAlsoNegotiates(payload any) Response {
	return New(http.StatusVariantAlsoNegotiates, payload)
}
func InsufficientStorage(payload any) Response {
	return New(http.StatusInsufficientStorage, payload)
}
func LoopDetected(payload any) Response { return New(http.StatusLoopDetected, payload) }
func NotExtended(payload any) Response  { return New(http.StatusNotExtended, payload) }
func NetworkAuthenticationRequired(payload any) Response {
	return New(http.StatusNetworkAuthenticationRequired, payload)
}
