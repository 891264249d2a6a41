package in

import "context"

type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is what a successful login hands back to the client: the
// bearer token plus the identity it encodes.
type LoginOutput struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginUseCase interface {
	Execute(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
