package integration_tests

import "github.com/specialistvlad/labpatrol/internal/app"

func testAppConfig() app.Config {
	return app.Config{LogLevel: "debug", Workers: 1}
}
