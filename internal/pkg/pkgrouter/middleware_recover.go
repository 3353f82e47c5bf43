package pkgrouter

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgadvice"
)

func middlewareRecoverer(tr *pkgadvice.Translator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					//nolint:err113,errorlint // this must compare directly
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}

					err, ok := rvr.(error)
					if !ok {
						//nolint:err113 // panic value is dynamic
						err = fmt.Errorf("panic: %v", rvr)
					}

					tr.WriteFailure(w, r, pkgadvice.GenericFailure{
						Err:   err,
						Stack: shortStack(debug.Stack()),
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// shortStack keeps only the frames that point into this module's internal
// packages, one "internal/...go:line" per line. The full stack is returned
// when no such frame exists.
func shortStack(stack []byte) []byte {
	lines := strings.Split(string(stack), "\n")
	frames := make([]string, 0, len(lines)/2)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "/internal/") {
			continue
		}
		idx := strings.Index(line, ".go:")
		if idx == -1 {
			continue
		}

		end := strings.Index(line[idx:], " ")
		if end == -1 {
			end = len(line)
		} else {
			end += idx
		}

		shortPath := line[:end]
		if internalIdx := strings.Index(shortPath, "/internal/"); internalIdx != -1 {
			frames = append(frames, shortPath[internalIdx+1:])
		}
	}

	if len(frames) == 0 {
		return stack
	}

	return []byte(strings.Join(frames, "\n"))
}
