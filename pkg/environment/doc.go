// Package environment names the deployment environments the CLI and its
// logger distinguish between.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // JSON logs
//	}
package environment
