package random

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/go-num"
)

var (
	_globalRand *mrand.Rand
	_randLock   sync.Mutex
)

func init() {
	_globalRand = mrand.New(mrand.NewSource(time.Now().UnixNano()))
}

// Bytes returns n cryptographically random bytes.
func Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Wrap(err, "unable to read random data")
	}
	return buf, nil
}

// U128 returns a cryptographically random 128-bit value.
func U128() (num.U128, error) {
	buf, err := Bytes(16)
	if err != nil {
		return num.U128{}, err
	}
	return num.U128FromRaw(binary.BigEndian.Uint64(buf[:8]), binary.BigEndian.Uint64(buf[8:])), nil
}

// Uint64 returns a pseudo-random 64-bit value.
func Uint64() uint64 {
	_randLock.Lock()
	defer _randLock.Unlock()
	return _globalRand.Uint64()
}
