package main

import (
	"testing"

	"github.com/kovetskiy/mathtex/util"
	"github.com/reconquest/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func Test_setLogLevel(t *testing.T) {
	tests := map[string]struct {
		lvl         string
		want        log.Level
		expectedErr string
	}{
		"invalid":    {lvl: "INVALID", want: log.LevelInfo, expectedErr: "unknown log level: INVALID"},
		"empty":      {lvl: "", want: log.LevelInfo, expectedErr: "unknown log level: "},
		"lower case": {lvl: "debug", want: log.LevelDebug},
		"info":       {lvl: log.LevelInfo.String(), want: log.LevelInfo},
		"debug":      {lvl: log.LevelDebug.String(), want: log.LevelDebug},
		"trace":      {lvl: log.LevelTrace.String(), want: log.LevelTrace},
		"warning":    {lvl: log.LevelWarning.String(), want: log.LevelWarning},
		"error":      {lvl: log.LevelError.String(), want: log.LevelError},
		"fatal":      {lvl: log.LevelFatal.String(), want: log.LevelFatal},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			log.SetLevel(log.LevelInfo)

			cmd := &cli.Command{
				Name: "test",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "log-level",
						Value: tt.lvl,
						Usage: "set the log level. Possible values: TRACE, DEBUG, INFO, WARNING, ERROR, FATAL.",
					},
				},
			}
			err := util.SetLogLevel(cmd)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}
