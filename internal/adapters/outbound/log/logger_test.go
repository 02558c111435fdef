package log

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_Initialize(t *testing.T) {
	tests := map[string]struct {
		output    string
		expectErr bool
	}{
		"default": {output: ""},
		"stdout":  {output: "stdout"},
		"stderr":  {output: "stderr"},
		"invalid": {output: "file", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			init := InitLogger{Output: tt.output}

			_, err := init.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			logger, err := depend.Resolve[*log.Logger]()
			assert.NoError(t, err)
			if tt.output == "stderr" {
				assert.Equal(t, os.Stderr, logger.Writer())
			} else {
				assert.Equal(t, os.Stdout, logger.Writer())
			}
		})
	}
}
