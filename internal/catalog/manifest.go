package catalog

import "kortex-pack/internal/models"

type deps = models.OrderedMap[string]

// FrontendManifest returns the package.json of the desktop/web client
func FrontendManifest() *models.PackageManifest {
	return &models.PackageManifest{
		Name:        "kortex-writing-hub",
		Version:     "1.0.0",
		Description: "AI-Powered Writing Hub with Neon-Glass Design",
		Main:        "dist-electron/main.js",
		Homepage:    "./",
		Scripts: deps{
			{Key: "dev", Value: `concurrently "npm run dev:vite" "npm run dev:electron"`},
			{Key: "dev:vite", Value: "vite"},
			{Key: "dev:electron", Value: "electron ."},
			{Key: "build", Value: "tsc && vite build && npm run build:electron"},
			{Key: "build:electron", Value: "electron-builder"},
			{Key: "preview", Value: "vite preview"},
			{Key: "lint", Value: "eslint . --ext ts,tsx --report-unused-disable-directives --max-warnings 0"},
			{Key: "format", Value: "prettier --write ."},
			{Key: "test", Value: "vitest"},
			{Key: "test:ui", Value: "vitest --ui"},
			{Key: "package", Value: "electron-forge package"},
			{Key: "make", Value: "electron-forge make"},
			{Key: "publish", Value: "electron-forge publish"},
		},
		Dependencies: deps{
			{Key: "@monaco-editor/react", Value: "^4.6.0"},
			{Key: "@radix-ui/react-dialog", Value: "^1.0.5"},
			{Key: "@radix-ui/react-dropdown-menu", Value: "^2.0.6"},
			{Key: "@radix-ui/react-toast", Value: "^1.1.5"},
			{Key: "framer-motion", Value: "^10.16.16"},
			{Key: "lucide-react", Value: "^0.298.0"},
			{Key: "monaco-editor", Value: "^0.44.0"},
			{Key: "openai", Value: "^4.20.1"},
			{Key: "react", Value: "^18.2.0"},
			{Key: "react-dom", Value: "^18.2.0"},
			{Key: "react-hotkeys-hook", Value: "^4.4.1"},
			{Key: "socket.io-client", Value: "^4.7.4"},
			{Key: "zustand", Value: "^4.4.7"},
		},
		DevDependencies: deps{
			{Key: "@electron-forge/cli", Value: "^7.2.0"},
			{Key: "@electron-forge/maker-deb", Value: "^7.2.0"},
			{Key: "@electron-forge/maker-dmg", Value: "^7.2.0"},
			{Key: "@electron-forge/maker-rpm", Value: "^7.2.0"},
			{Key: "@electron-forge/maker-squirrel", Value: "^7.2.0"},
			{Key: "@electron-forge/maker-zip", Value: "^7.2.0"},
			{Key: "@electron-forge/plugin-vite", Value: "^7.2.0"},
			{Key: "@types/react", Value: "^18.2.43"},
			{Key: "@types/react-dom", Value: "^18.2.17"},
			{Key: "@typescript-eslint/eslint-plugin", Value: "^6.14.0"},
			{Key: "@typescript-eslint/parser", Value: "^6.14.0"},
			{Key: "@vitejs/plugin-react", Value: "^4.2.1"},
			{Key: "autoprefixer", Value: "^10.4.16"},
			{Key: "concurrently", Value: "^8.2.2"},
			{Key: "electron", Value: "^28.1.0"},
			{Key: "eslint", Value: "^8.55.0"},
			{Key: "eslint-plugin-react-hooks", Value: "^4.6.0"},
			{Key: "eslint-plugin-react-refresh", Value: "^0.4.5"},
			{Key: "postcss", Value: "^8.4.32"},
			{Key: "prettier", Value: "^3.1.1"},
			{Key: "tailwindcss", Value: "^3.3.6"},
			{Key: "typescript", Value: "^5.2.2"},
			{Key: "vite", Value: "^5.0.8"},
			{Key: "vitest", Value: "^1.0.4"},
		},
		Author:  "Writing Hub Team",
		License: "MIT",
		Repository: &models.PackageRepository{
			Type: "git",
			URL:  "https://github.com/your-org/kortex-writing-hub.git",
		},
	}
}

// BackendManifest returns the package.json of the Express API server
func BackendManifest() *models.PackageManifest {
	return &models.PackageManifest{
		Name:        "kortex-writing-hub-backend",
		Version:     "1.0.0",
		Description: "Backend API for Kortex Writing Hub",
		Main:        "src/server.js",
		Scripts: deps{
			{Key: "start", Value: "node src/server.js"},
			{Key: "dev", Value: "nodemon src/server.js"},
			{Key: "test", Value: "jest"},
			{Key: "test:watch", Value: "jest --watch"},
			{Key: "lint", Value: "eslint src/"},
			{Key: "migrate", Value: "knex migrate:latest"},
			{Key: "seed", Value: "knex seed:run"},
		},
		Dependencies: deps{
			{Key: "express", Value: "^4.18.2"},
			{Key: "cors", Value: "^2.8.5"},
			{Key: "helmet", Value: "^7.1.0"},
			{Key: "morgan", Value: "^1.10.0"},
			{Key: "bcryptjs", Value: "^2.4.3"},
			{Key: "jsonwebtoken", Value: "^9.0.2"},
			{Key: "multer", Value: "^1.4.5-lts.1"},
			{Key: "socket.io", Value: "^4.7.4"},
			{Key: "knex", Value: "^3.0.1"},
			{Key: "sqlite3", Value: "^5.1.6"},
			{Key: "pg", Value: "^8.11.3"},
			{Key: "openai", Value: "^4.20.1"},
			{Key: "anthropic", Value: "^0.6.0"},
			{Key: "dotenv", Value: "^16.3.1"},
			{Key: "joi", Value: "^17.11.0"},
			{Key: "rate-limiter-flexible", Value: "^3.0.8"},
		},
		DevDependencies: deps{
			{Key: "nodemon", Value: "^3.0.2"},
			{Key: "jest", Value: "^29.7.0"},
			{Key: "supertest", Value: "^6.3.3"},
			{Key: "eslint", Value: "^8.55.0"},
		},
	}
}
