// Package project manages a directory of DDL files together with its
// sqlfront.yaml configuration.
//
// A project follows this layout:
//
//	project-root/
//	├── sqlfront.yaml           # Project configuration
//	└── db/
//	    └── schema.sql          # Main schema entrypoint
//
// Initialization is idempotent: existing files are never overwritten, only
// missing pieces of the layout are created.
//
// Usage:
//
//	p := project.New("/path/to/project")
//	if err := p.Initialize(project.InitOptions{}); err != nil {
//		log.Fatal(err)
//	}
//
//	sql, err := p.ParseSchema()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("parsed %d statements\n", len(sql.Statements))
package project
