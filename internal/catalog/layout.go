package catalog

import "kortex-pack/internal/models"

type tree = models.Tree

// BundleName is the archive name the delivery contents are described under
const BundleName = "kortex-writing-hub-complete.zip"

// PackageStructure returns the planned source layout of the full project
func PackageStructure() models.Tree {
	return tree{
		{Key: "writing-hub-complete", Value: tree{
			{Key: "frontend", Value: tree{
				{Key: "src", Value: tree{
					{Key: "components", Value: tree{
						{Key: "Editor", Value: []string{"MonacoEditor.tsx", "MarkdownEditor.tsx", "EditorToolbar.tsx"}},
						{Key: "FocusTimer", Value: []string{"Timer.tsx", "TimerSettings.tsx", "CategorySelector.tsx"}},
						{Key: "AI", Value: []string{"ChatPanel.tsx", "AIChat.tsx", "PromptLibrary.tsx"}},
						{Key: "Knowledge", Value: []string{"KnowledgeVault.tsx", "FileTree.tsx", "TagManager.tsx"}},
						{Key: "Projects", Value: []string{"ProjectBoard.tsx", "KanbanView.tsx", "TimelineView.tsx"}},
						{Key: "Constellation", Value: []string{"ConstellationMap.tsx", "NodeGraph.tsx"}},
						{Key: "Assets", Value: []string{"AssetLibrary.tsx", "AssetPreview.tsx", "AssetUpload.tsx"}},
						{Key: "Layout", Value: []string{"Sidebar.tsx", "Header.tsx", "MainPanel.tsx", "ResizablePanels.tsx"}},
					}},
					{Key: "hooks", Value: []string{"useTimer.ts", "useAI.ts", "useKeyboard.ts", "useDragDrop.ts"}},
					{Key: "services", Value: []string{"aiService.ts", "storageService.ts", "exportService.ts"}},
					{Key: "stores", Value: []string{"appStore.ts", "documentStore.ts", "timerStore.ts"}},
					{Key: "types", Value: []string{"index.ts", "documents.ts", "ai.ts", "projects.ts"}},
					{Key: "utils", Value: []string{"helpers.ts", "constants.ts", "themes.ts"}},
					{Key: "styles", Value: []string{"globals.css", "components.css", "themes.css"}},
				}},
				{Key: "public", Value: []string{"index.html", "manifest.json", "icons/", "assets/"}},
				{Key: "config", Value: []string{"vite.config.ts", "tsconfig.json", "tailwind.config.js"}},
			}},
			{Key: "backend", Value: tree{
				{Key: "src", Value: tree{
					{Key: "controllers", Value: []string{"authController.js", "documentsController.js", "aiController.js"}},
					{Key: "models", Value: []string{"User.js", "Document.js", "Project.js", "Asset.js"}},
					{Key: "routes", Value: []string{"auth.js", "documents.js", "ai.js", "projects.js"}},
					{Key: "middleware", Value: []string{"auth.js", "cors.js", "validation.js"}},
					{Key: "services", Value: []string{"aiService.js", "storageService.js", "collaborationService.js"}},
					{Key: "utils", Value: []string{"database.js", "helpers.js", "constants.js"}},
				}},
				{Key: "config", Value: []string{"database.json", "server.js", "package.json"}},
			}},
			{Key: "electron", Value: tree{
				{Key: "main", Value: []string{"main.js", "preload.js", "menu.js"}},
				{Key: "config", Value: []string{"forge.config.js", "package.json"}},
			}},
			{Key: "docs", Value: []string{"README.md", "DEPLOYMENT.md", "API.md", "FEATURES.md"}},
			{Key: "scripts", Value: []string{"setup.sh", "dev.sh", "build.sh", "deploy.sh"}},
			{Key: "docker", Value: []string{"Dockerfile", "docker-compose.yml", ".dockerignore"}},
		}},
	}
}

// BundleContents returns the described contents of the delivery archive,
// keyed by BundleName. Leaves map a file name to its description.
func BundleContents() models.Tree {
	return tree{
		{Key: BundleName, Value: tree{
			{Key: "README.md", Value: "Main project documentation and quick start guide"},
			{Key: "deployment-guide.md", Value: "Complete deployment and setup instructions"},
			{Key: "features-overview.md", Value: "Comprehensive feature list and benefits"},

			{Key: models.PackageFile, Value: "Frontend dependencies and build scripts"},
			{Key: models.BackendPackageFile, Value: "Backend Node.js dependencies"},
			{Key: models.TimelineFile, Value: "28-week development timeline"},
			{Key: models.ServerConfigFile, Value: "Environment configuration"},
			{Key: models.DatabaseSchemaFile, Value: "Database structure definition"},
			{Key: models.BackendAPIFile, Value: "Complete API documentation"},

			{Key: "frontend/", Value: tree{
				{Key: "index.html", Value: "Main application entry point"},
				{Key: "style.css", Value: "Complete glassmorphism + neon styling"},
				{Key: "app.js", Value: "Full application logic and features"},
				{Key: "assets/", Value: "Icons, images, and static resources"},
			}},
			{Key: "backend/", Value: tree{
				{Key: "src/", Value: tree{
					{Key: "server.js", Value: "Express server setup"},
					{Key: "controllers/", Value: "API route handlers"},
					{Key: "models/", Value: "Database models"},
					{Key: "services/", Value: "Business logic services"},
					{Key: "middleware/", Value: "Authentication and validation"},
					{Key: "routes/", Value: "API endpoint definitions"},
				}},
				{Key: "config/", Value: "Database and environment config"},
				{Key: "migrations/", Value: "Database migration files"},
				{Key: "package.json", Value: "Backend dependencies"},
			}},
			{Key: "electron/", Value: tree{
				{Key: "main.js", Value: "Electron main process"},
				{Key: "preload.js", Value: "Secure context bridge"},
				{Key: "forge.config.js", Value: "Build configuration"},
				{Key: "package.json", Value: "Electron dependencies"},
			}},
			{Key: "scripts/", Value: tree{
				{Key: "setup.sh", Value: "One-command project setup"},
				{Key: "dev.sh", Value: "Development environment starter"},
				{Key: "build.sh", Value: "Production build script"},
				{Key: "deploy.sh", Value: "Deployment automation"},
			}},
			{Key: "docker/", Value: tree{
				{Key: "Dockerfile", Value: "Container definition"},
				{Key: "docker-compose.yml", Value: "Multi-service setup"},
				{Key: ".dockerignore", Value: "Docker ignore rules"},
			}},
			{Key: "docs/", Value: tree{
				{Key: "API.md", Value: "Backend API reference"},
				{Key: "FEATURES.md", Value: "Feature implementation guide"},
				{Key: "DEPLOYMENT.md", Value: "Platform-specific deployment"},
				{Key: "CONTRIBUTING.md", Value: "Development guidelines"},
			}},
		}},
	}
}
