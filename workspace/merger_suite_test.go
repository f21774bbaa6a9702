package workspace

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMergerSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "workspace merger suite")
}
