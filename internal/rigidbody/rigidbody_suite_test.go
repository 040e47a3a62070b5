package rigidbody

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRigidbody(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Rigidbody Suite")
}
