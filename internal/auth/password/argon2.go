package password

import (
	"errors"

	"github.com/alexedwards/argon2id"
)

type Hasher struct {
	params *argon2id.Params
}

func NewDefault() *Hasher {
	// параметры по умолчанию (достаточно безопасны и не слишком тяжёлые)
	return &Hasher{params: argon2id.DefaultParams}
}

func New(p *argon2id.Params) *Hasher { return &Hasher{params: p} }

// Hash возвращает закодированную строку формата $argon2id$v=19$m=...
// Соль случайная на каждый вызов: одинаковые пароли дают разные хэши.
func (h *Hasher) Hash(plain string) (string, error) {
	if h == nil || h.params == nil {
		return "", errors.New("argon2id params not set")
	}
	return argon2id.CreateHash(plain, h.params)
}

// Verify сравнивает пароль с сохранённым хэшем.
// Битая строка хэша — это просто неуспешная проверка, не паника.
func (h *Hasher) Verify(plain, encodedHash string) (bool, error) {
	ok, err := argon2id.ComparePasswordAndHash(plain, encodedHash)
	if err != nil {
		return false, nil
	}
	return ok, nil
}
