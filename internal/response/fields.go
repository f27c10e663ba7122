package response

import (
	"github.com/shuga2704/http-server/http/status"
	"github.com/shuga2704/http-server/kv"
)

type Fields struct {
	Status  status.Status
	Headers []kv.Pair
	Body    []byte
	Code    status.Code
}

func (f Fields) Clear() Fields {
	f.Code = status.OK
	f.Status = ""
	f.Headers = f.Headers[:0]
	f.Body = nil

	return f
}
