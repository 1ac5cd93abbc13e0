package lower

import "github.com/vk/tensorsched/internal/ir"

// NewSigmoidLower lowers the generic sigmoid operator.
func NewSigmoidLower() Lower {
	return &kindLower{match: "sigmoid", target: "dla.sigmoid"}
}

// NewReLULower lowers the generic relu operator.
func NewReLULower() Lower {
	return &kindLower{match: "relu", target: "dla.relu"}
}

// NewAddLower lowers the generic elementwise add operator.
func NewAddLower() Lower {
	return &kindLower{match: "add", target: "dla.add"}
}

// NewLRNLower lowers the generic local response normalization operator.
func NewLRNLower() Lower {
	return &kindLower{match: "lrn", target: "dla.lrn"}
}

// NewMatMulLower lowers the generic matrix multiply operator.
func NewMatMulLower() Lower {
	return &kindLower{match: "matmul", target: "dla.matmul"}
}

// NewConvLower lowers the generic convolution operator.
func NewConvLower() Lower {
	return &kindLower{match: "conv", target: "dla.conv"}
}

// Standards returns the full standard lowering set for the dla target
// family.
func Standards() []Lower {
	return []Lower{
		NewSigmoidLower(),
		NewReLULower(),
		NewAddLower(),
		NewLRNLower(),
		NewMatMulLower(),
		NewConvLower(),
	}
}

// KindLower builds a lower for targets whose compute operators map one to
// one from a generic kind.
func KindLower(match, target ir.Kind) Lower {
	return &kindLower{match: match, target: target}
}
