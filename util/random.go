package util

import (
	"fmt"
	"math/rand"
	"strings"
)

const alpha = "abcdefghjklmnopqrstuvwxyz"

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alpha)

	for i := 0; i < n; i++ {
		c := alpha[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomJobID generates an opaque job identifier like "job-kfmqpt"
func RandomJobID() string {
	return "job-" + RandomString(6)
}

// RandomJobDescription returns a plausible job-posting sentence mentioning
// the given skills, so tests can assert on a known expected set.
func RandomJobDescription(mentioned ...string) string {
	openers := []string{
		"We are looking for an engineer experienced with",
		"The ideal candidate has shipped production systems using",
		"Join our platform team working daily with",
		"You will design and operate services built on",
	}

	closers := []string{
		"in a fast-paced environment.",
		"across several product teams.",
		"with a focus on reliability.",
		"at meaningful scale.",
	}

	opener := openers[rand.Intn(len(openers))]
	closer := closers[rand.Intn(len(closers))]

	return fmt.Sprintf("%s %s %s", opener, strings.Join(mentioned, " and "), closer)
}
