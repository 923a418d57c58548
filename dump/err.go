package dump

import (
	"github.com/uvmkit/uvm/translate"
)

var f = translate.From

type ErrRange string

func (err ErrRange) Error() string {
	return f("range '%v' must be start:end, e.g. 0:300", string(err))
}
