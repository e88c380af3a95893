package controllers

import (
	"github.com/princinho/amanatbackend/config"
	"github.com/princinho/amanatbackend/database"
	"github.com/princinho/amanatbackend/utils"
)

// App carries the process-wide collaborators. It is built once in main and
// passed to every handler constructor; handlers hold no other state.
type App struct {
	DB    *database.Mongo
	Media *utils.MediaStore
	Cfg   *config.Config
}
