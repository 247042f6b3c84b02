package eigen_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEigen(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Eigen Suite")
}
