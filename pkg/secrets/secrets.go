package secrets

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// DefaultKey is the key in the secret data that holds the token.
const DefaultKey = "token"

// KubeSecretGetter is an implementation of TokenGetter.
type KubeSecretGetter struct {
	coreClient kubernetes.Interface
	name       string
	namespace  string
	key        string
}

// New creates and returns a KubeSecretGetter that looks up the token as a
// key in a known v1.Secret.
func New(ns, n, key string, c kubernetes.Interface) *KubeSecretGetter {
	if key == "" {
		key = DefaultKey
	}
	return &KubeSecretGetter{
		name:       n,
		namespace:  ns,
		key:        key,
		coreClient: c,
	}
}

// Token reads the token from the secret, or returns an error.
func (k KubeSecretGetter) Token(ctx context.Context) (string, error) {
	secret, err := k.coreClient.CoreV1().Secrets(k.namespace).Get(ctx, k.name, metav1.GetOptions{})
	if err != nil {
		return "", err
	}
	token, ok := secret.Data[k.key]
	if !ok || len(token) == 0 {
		return "", fmt.Errorf("no token in secret %s/%s, looked for key %s", k.namespace, k.name, k.key)
	}
	return string(token), nil
}
