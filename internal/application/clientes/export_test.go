package clientes

import "time"

// SetNow fija el reloj del caso de uso en tests.
func (uc *ClienteUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
