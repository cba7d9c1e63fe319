package repositories

import (
	"time"

	"github.com/PavaniTiago/advisor-api/internal/utils"
)

// Clock fornece o instante usado para carimbar datas de criação
type Clock func() time.Time

// Today retorna a data corrente (YYYY-MM-DD) em São Paulo
func (c Clock) Today() string {
	if c == nil {
		return utils.FormatDate(time.Now())
	}
	return utils.FormatDate(c())
}
