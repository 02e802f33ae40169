package response

// Named status constructors: one-line convenience calls into
// Response.Status for the codes handlers reach for most often.

func (r *Response) OK() error                   { return r.Status(200) }
func (r *Response) Created() error              { return r.Status(201) }
func (r *Response) NoContent() error            { return r.Status(204) }
func (r *Response) MovedPermanently() error     { return r.Status(301) }
func (r *Response) Found() error                { return r.Status(302) }
func (r *Response) NotModified() error          { return r.Status(304) }
func (r *Response) BadRequest() error           { return r.Status(400) }
func (r *Response) Unauthorized() error         { return r.Status(401) }
func (r *Response) Forbidden() error            { return r.Status(403) }
func (r *Response) NotFound() error             { return r.Status(404) }
func (r *Response) MethodNotAllowed() error     { return r.Status(405) }
func (r *Response) Conflict() error             { return r.Status(409) }
func (r *Response) UnsupportedMediaType() error { return r.Status(415) }
func (r *Response) InternalServerError() error  { return r.Status(500) }
func (r *Response) NotImplemented() error       { return r.Status(501) }
func (r *Response) ServiceUnavailable() error   { return r.Status(503) }
